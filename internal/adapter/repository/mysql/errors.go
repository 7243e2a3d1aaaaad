package mysql

import (
	"errors"

	"gorm.io/gorm"
)

// notFound maps gorm's missing-row error onto the caller's domain error and
// passes everything else through.
func notFound(err, domainErr error) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return domainErr
	}
	return err
}

// isDuplicate needs gorm.Config.TranslateError so driver errors surface as
// gorm.ErrDuplicatedKey.
func isDuplicate(err error) bool {
	return errors.Is(err, gorm.ErrDuplicatedKey)
}
