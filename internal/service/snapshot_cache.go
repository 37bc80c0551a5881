package service

import (
	"encoding/binary"
	"sync"

	"go_titan_quest/internal/model"

	"github.com/google/uuid"
)

// playerLockStripes はプレイヤー単位ロックの分割数
const playerLockStripes = 64

// cacheEntry はキャッシュ1件。dirty は自動保存待ち、used は前回の掃除以降に触られたか。
type cacheEntry struct {
	profile model.Profile
	dirty   bool
	used    bool
}

// SnapshotCache はアクティブなプレイヤーの最新プロフィールをメモリに保持します。
// 書き込み (Put) された値は自動保存ジョブが書き戻し、一周期触られなかった値は Sweep で捨てる。
//
// DBへの書き込みとキャッシュ更新は Lock で取ったプレイヤー単位のロック内で行う。
// これでキャッシュの値は常にそのプレイヤーの最後にコミットされた値になる。
type SnapshotCache struct {
	mu      sync.RWMutex
	entries map[uuid.UUID]*cacheEntry

	players [playerLockStripes]sync.Mutex
}

func NewSnapshotCache() *SnapshotCache {
	return &SnapshotCache{entries: make(map[uuid.UUID]*cacheEntry)}
}

// Lock はプレイヤー単位のロックを取り、解放関数を返します
func (c *SnapshotCache) Lock(playerID uuid.UUID) (unlock func()) {
	m := &c.players[binary.BigEndian.Uint64(playerID[8:])%playerLockStripes]
	m.Lock()
	return m.Unlock
}

func (c *SnapshotCache) Get(playerID uuid.UUID) (model.Profile, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	e, ok := c.entries[playerID]
	if !ok {
		return model.Profile{}, false
	}
	return e.profile, true
}

// Put は書き込み後のプロフィールを保持し、自動保存の対象にします
func (c *SnapshotCache) Put(playerID uuid.UUID, profile model.Profile) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.entries[playerID] = &cacheEntry{profile: profile, dirty: true, used: true}
}

// Remember は読み込んだだけのプロフィールを保持します。保存待ちの状態は変えない。
func (c *SnapshotCache) Remember(playerID uuid.UUID, profile model.Profile) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if e, ok := c.entries[playerID]; ok {
		e.profile = profile
		e.used = true
		return
	}
	c.entries[playerID] = &cacheEntry{profile: profile, used: true}
}

func (c *SnapshotCache) Delete(playerID uuid.UUID) {
	c.mu.Lock()
	defer c.mu.Unlock()
	delete(c.entries, playerID)
}

func (c *SnapshotCache) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.entries)
}

// Dirty は自動保存待ちのプレイヤーIDを返します
func (c *SnapshotCache) Dirty() []uuid.UUID {
	c.mu.RLock()
	defer c.mu.RUnlock()
	ids := make([]uuid.UUID, 0, len(c.entries))
	for id, e := range c.entries {
		if e.dirty {
			ids = append(ids, id)
		}
	}
	return ids
}

// MarkClean は保存が済んだことを記録します。プレイヤーのロック内で呼ぶ。
func (c *SnapshotCache) MarkClean(playerID uuid.UUID) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if e, ok := c.entries[playerID]; ok {
		e.dirty = false
	}
}

// Sweep は保存済みで前回の Sweep 以降に触られていないエントリを捨て、捨てた件数を返します。
// 残ったエントリは次の周期までに触られなければ次回捨てられる。
func (c *SnapshotCache) Sweep() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	evicted := 0
	for id, e := range c.entries {
		switch {
		case e.dirty:
		case !e.used:
			delete(c.entries, id)
			evicted++
		default:
			e.used = false
		}
	}
	return evicted
}
