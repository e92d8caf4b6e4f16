package utils

import (
	"github.com/speps/go-hashids/v2"
)

// GenHashID 根据数值 ID 生成短分享 slug
func GenHashID(salt string, id int) string {
	hd := hashids.NewData()
	hd.Salt = salt
	hd.MinLength = 12
	h, _ := hashids.NewWithData(hd)
	e, _ := h.Encode([]int{id})
	return e
}
