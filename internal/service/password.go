// File: internal/service/password.go
package service

import (
	"golang.org/x/crypto/bcrypt"

	"github.com/Abbas-Hussain-byte/primetrade-assignment/internal/worker"
)

var (
	bcryptGenerateFromPassword   = bcrypt.GenerateFromPassword
	bcryptCompareHashAndPassword = bcrypt.CompareHashAndPassword
)

// HashPassword 在 worker pool 上產生 bcrypt 哈希字串
func HashPassword(wp worker.Pool, password string) (string, error) {
	var (
		hashBytes []byte
		err       error
	)
	worker.Run(wp, func() {
		hashBytes, err = bcryptGenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	})
	if err != nil {
		return "", err
	}
	return string(hashBytes), nil
}

// ComparePassword 比對明文密碼與 bcrypt 哈希，成功回傳 nil
func ComparePassword(wp worker.Pool, hash, password string) error {
	var err error
	worker.Run(wp, func() {
		err = bcryptCompareHashAndPassword([]byte(hash), []byte(password))
	})
	return err
}
