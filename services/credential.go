package services

import (
	"errors"
	"fmt"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// Account is a row that can be logged into.
type Account interface {
	PasswordHash() string
	Identity() interface{}
}

// VerifyCredential loads account by email and checks password against its
// hash. An unknown email is ErrNotFound, a wrong password ErrInvalidCredential.
func VerifyCredential(db *gorm.DB, account Account, email, password string) (interface{}, error) {
	err := db.Where(clause.Eq{Column: clause.Column{Name: "email"}, Value: email}).Take(account).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("load account: %w", err)
	}

	if !CheckPassword(account.PasswordHash(), password) {
		return nil, ErrInvalidCredential
	}
	return account.Identity(), nil
}

// CheckPassword compares in constant time.
func CheckPassword(hash, password string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)) == nil
}
