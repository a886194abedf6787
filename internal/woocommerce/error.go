package woocommerce

import "errors"

var (
	ErrNotConfigured = errors.New("woocommerce api is not configured")
	ErrStatus        = errors.New("unexpected response status")
	ErrNotFound      = errors.New("product not found")
)
