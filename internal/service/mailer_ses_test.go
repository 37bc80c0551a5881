package service

import (
	"context"
	"errors"
	"testing"

	"go_titan_quest/internal/config"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/sesv2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeSESSender struct {
	input *sesv2.SendEmailInput
	err   error
}

func (f *fakeSESSender) SendEmail(ctx context.Context, params *sesv2.SendEmailInput, optFns ...func(*sesv2.Options)) (*sesv2.SendEmailOutput, error) {
	f.input = params
	if f.err != nil {
		return nil, f.err
	}
	return &sesv2.SendEmailOutput{MessageId: aws.String("msg-1")}, nil
}

func TestSESMailer_Send(t *testing.T) {
	t.Run("正常系: 送信内容を組み立てる", func(t *testing.T) {
		sender := &fakeSESSender{}
		m := &SESMailer{client: sender, from: "noreply@titan.example"}

		err := m.Send(context.Background(), "hero@example.com", "件名", "本文")
		require.NoError(t, err)
		require.NotNil(t, sender.input)
		assert.Equal(t, "noreply@titan.example", aws.ToString(sender.input.FromEmailAddress))
		assert.Equal(t, []string{"hero@example.com"}, sender.input.Destination.ToAddresses)
		assert.Equal(t, "件名", aws.ToString(sender.input.Content.Simple.Subject.Data))
		assert.Equal(t, "本文", aws.ToString(sender.input.Content.Simple.Body.Text.Data))
	})

	t.Run("異常系: SESエラーをそのまま返す", func(t *testing.T) {
		sendErr := errors.New("throttled")
		m := &SESMailer{client: &fakeSESSender{err: sendErr}, from: "noreply@titan.example"}
		assert.ErrorIs(t, m.Send(context.Background(), "hero@example.com", "s", "b"), sendErr)
	})
}

func TestSESLoadOptions(t *testing.T) {
	tests := []struct {
		name     string
		authType string
		key      string
		secret   string
		wantLen  int
		wantErr  error
	}{
		{name: "正常系: IAMロール", authType: SESAuthIAMRole, wantLen: 1},
		{name: "正常系: 静的認証情報", authType: SESAuthStaticCredentials, key: "AKIA", secret: "secret", wantLen: 2},
		{name: "異常系: 静的認証情報が不足", authType: SESAuthStaticCredentials, key: "AKIA", wantErr: ErrMissingSESCredentials},
		{name: "境界値: 不明な方式はIAMロール扱い", authType: "unknown", wantLen: 1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := &config.Config{}
			cfg.SES.Region = "ap-northeast-1"
			cfg.SES.AuthType = tt.authType
			cfg.SES.AccessKeyID = tt.key
			cfg.SES.SecretAccessKey = tt.secret

			opts, err := sesLoadOptions(cfg)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Len(t, opts, tt.wantLen)
		})
	}
}

func TestNewMailer_LogByDefault(t *testing.T) {
	cfg := &config.Config{}
	cfg.Mailer.Type = config.MailerTypeLog

	m, err := NewMailer(context.Background(), cfg)
	require.NoError(t, err)
	assert.IsType(t, &LogMailer{}, m)
	assert.NoError(t, m.Send(context.Background(), "hero@example.com", "s", "b"))
}
