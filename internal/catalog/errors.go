package catalog

import "errors"

var (
	ErrEmptyKeyword      = errors.New("search keyword is empty")
	ErrInvalidPriceRange = errors.New("invalid price range")
)
