package webutil

import (
	"log"
	"reflect"
	"strings"

	"github.com/go-playground/locales/ja" // 日本語ロケール
	ut "github.com/go-playground/universal-translator"
	"github.com/go-playground/validator/v10"
	ja_translations "github.com/go-playground/validator/v10/translations/ja" // 日本語翻訳
)

// Validator はアプリケーション全体で共有されるバリデータインスタンスです。
var Validator *validator.Validate

// Trans はエラーメッセージを翻訳するためのトランスレータです。
var Trans ut.Translator

var fieldNameTranslations = map[string]string{
	"name":                 "名前",
	"email":                "メールアドレス",
	"age":                  "年齢",
	"height":               "身長",
	"weight":               "体重",
	"target_weight":        "目標体重",
	"faction":              "派閥",
	"training_style":       "トレーニングスタイル",
	"sound_enabled":        "効果音",
	"volume":               "音量",
	"notification_enabled": "通知",
	"calories":             "摂取カロリー",
	"challenge_title":      "チャレンジ名",
	"xp_reward":            "報酬XP",
	"result":               "結果",
	"record":               "記録",
	"query":                "質問",
	"duration_minutes":     "1回の時間",
	"frequency_per_week":   "週の回数",
	"specific_goal":        "具体的な目標",
	"new_name":             "種目名",
	"difficulty":           "難易度",
}

// fieldLabel はJSONタグ名を日本語の項目名に変換します。無ければそのまま。
func fieldLabel(fe validator.FieldError) string {
	if label, ok := fieldNameTranslations[fe.Field()]; ok {
		return label
	}
	return fe.Field()
}

// isStringKind は文字列系 (文字数で比較する) フィールドかどうか
func isStringKind(fe validator.FieldError) bool {
	return fe.Kind() == reflect.String
}

func init() {
	Validator = validator.New()

	// JSONタグからフィールド名を取得するように設定
	Validator.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})

	japanese := ja.New()
	uni := ut.New(japanese, japanese)
	var found bool
	Trans, found = uni.GetTranslator("ja")
	if !found {
		log.Fatal("translator not found")
	}

	if err := ja_translations.RegisterDefaultTranslations(Validator, Trans); err != nil {
		log.Fatal(err)
	}

	// 項目名だけを差し込むメッセージ
	registerTranslation := func(tag string, msg string) {
		Validator.RegisterTranslation(tag, Trans, func(ut ut.Translator) error {
			return ut.Add(tag, msg, true)
		}, func(ut ut.Translator, fe validator.FieldError) string {
			t, _ := ut.T(tag, fieldLabel(fe))
			return t
		})
	}

	// 項目名とパラメータを差し込むメッセージ。数値と文字列で文言を分ける。
	registerParamTranslation := func(tag, stringMsg, numberMsg string) {
		numberKey := tag + "-number"
		Validator.RegisterTranslation(tag, Trans, func(ut ut.Translator) error {
			if err := ut.Add(tag, stringMsg, true); err != nil {
				return err
			}
			return ut.Add(numberKey, numberMsg, true)
		}, func(ut ut.Translator, fe validator.FieldError) string {
			key := numberKey
			if isStringKind(fe) {
				key = tag
			}
			t, _ := ut.T(key, fieldLabel(fe), fe.Param())
			return t
		})
	}

	registerTranslation("required", "{0}は必須項目です。")
	registerTranslation("email", "{0}は有効なメールアドレス形式ではありません。")
	registerParamTranslation("min", "{0}は{1}文字以上で入力してください。", "{0}は{1}以上で入力してください。")
	registerParamTranslation("max", "{0}は{1}文字以下で入力してください。", "{0}は{1}以下で入力してください。")
	registerParamTranslation("gt", "{0}は{1}文字より長く入力してください。", "{0}は{1}より大きい値で入力してください。")
	registerParamTranslation("gte", "{0}は{1}文字以上で入力してください。", "{0}は{1}以上で入力してください。")
	registerParamTranslation("lte", "{0}は{1}文字以下で入力してください。", "{0}は{1}以下で入力してください。")

	Validator.RegisterTranslation("oneof", Trans, func(ut ut.Translator) error {
		return ut.Add("oneof", "{0}は[{1}]のいずれかで入力してください。", true)
	}, func(ut ut.Translator, fe validator.FieldError) string {
		t, _ := ut.T("oneof", fieldLabel(fe), strings.ReplaceAll(fe.Param(), " ", ", "))
		return t
	})
}
