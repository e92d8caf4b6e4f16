package handler

import (
	"errors"
	"strconv"

	"github.com/iamlouiesison/usefully-fin/pkg/response"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
)

// bindError 把 binding 校验错误转成带字段名的业务错误
func bindError(err error) error {
	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) && len(verrs) > 0 {
		return response.InvalidArgument("参数不合法: " + verrs[0].Field())
	}
	return response.InvalidArgument(err.Error())
}

func parseIDParam(c *gin.Context, name string) (uint64, error) {
	raw := c.Param(name)
	id, err := strconv.ParseUint(raw, 10, 64)
	if err != nil || id == 0 {
		return 0, response.InvalidArgument(name + " 格式错误")
	}
	return id, nil
}
