package encrypt

import (
	"sync"

	"golang.org/x/crypto/bcrypt"
)

// dummyHashes 按 cost 缓存的占位哈希
var dummyHashes sync.Map

// HashPassword 生成 bcrypt 密码哈希
func HashPassword(password string, cost int) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), cost)
	if err != nil {
		return "", err
	}
	return string(hash), nil
}

// VerifyPassword 校验密码
func VerifyPassword(hash string, password string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)) == nil
}

// CompareDummy 账号不存在时也做一次同等强度的比对，让两种失败耗时一致
func CompareDummy(password string, cost int) {
	v, ok := dummyHashes.Load(cost)
	if !ok {
		hash, err := bcrypt.GenerateFromPassword([]byte("appnotas-dummy-password"), cost)
		if err != nil {
			return
		}
		v, _ = dummyHashes.LoadOrStore(cost, hash)
	}
	_ = bcrypt.CompareHashAndPassword(v.([]byte), []byte(password))
}
