package domain

import "errors"

var (
	// ErrMenuNotFound 请求的菜单不存在
	ErrMenuNotFound = errors.New("menu not found")
	// ErrBlankMenuName 菜单名不能为空
	ErrBlankMenuName = errors.New("menu name must not be blank")
	// ErrNegativePrice 价格不能为负
	ErrNegativePrice = errors.New("menu price must not be negative")
)
