package api

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"sync"
	"time"

	"expenses/service"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
)

const missingExpenseParam = "param is missing or the value is empty: expense"

var registerOnce sync.Once

// registerValidators 注册 notblank 和 expensedate 校验规则
func registerValidators() {
	registerOnce.Do(func() {
		v, ok := binding.Validator.Engine().(*validator.Validate)
		if !ok {
			return
		}
		_ = v.RegisterValidation("notblank", func(fl validator.FieldLevel) bool {
			return strings.TrimSpace(fl.Field().String()) != ""
		})
		_ = v.RegisterValidation("expensedate", func(fl validator.FieldLevel) bool {
			_, err := service.ParseDate(fl.Field().String(), time.UTC)
			return err == nil
		})
	})
}

// fieldLabels 校验错误中显示的字段名
var fieldLabels = map[string]string{
	"CategoryID": "Category",
}

// validationMessages 将 binding 校验错误转换为逐条提示
func validationMessages(errs validator.ValidationErrors) []string {
	msgs := make([]string, 0, len(errs))
	for _, fe := range errs {
		msgs = append(msgs, fieldMessage(fe))
	}
	return msgs
}

func fieldMessage(fe validator.FieldError) string {
	label := fe.Field()
	if l, ok := fieldLabels[label]; ok {
		label = l
	}
	switch fe.Tag() {
	case "required":
		if fe.Field() == "CategoryID" {
			return "Category must exist"
		}
		return label + " can't be blank"
	case "notblank":
		return label + " can't be blank"
	case "max":
		return fmt.Sprintf("%s is too long (maximum is %s characters)", label, fe.Param())
	default:
		return label + " is invalid"
	}
}

// bindExpense 解析 {"expense": {...}} 并按 binding 标签校验
// 缺少或为空的 expense 返回 400，字段校验失败返回 422
func bindExpense(c *gin.Context, obj any) bool {
	var envelope struct {
		Expense json.RawMessage `json:"expense"`
	}
	if err := c.ShouldBindJSON(&envelope); err != nil {
		BadRequest(c, SafeErrorMessage(err, "invalid request body"))
		return false
	}

	var fields map[string]json.RawMessage
	if len(envelope.Expense) == 0 || json.Unmarshal(envelope.Expense, &fields) != nil || len(fields) == 0 {
		BadRequest(c, missingExpenseParam)
		return false
	}

	if err := binding.JSON.BindBody(envelope.Expense, obj); err != nil {
		var verrs validator.ValidationErrors
		if errors.As(err, &verrs) {
			Unprocessable(c, validationMessages(verrs))
			return false
		}
		BadRequest(c, SafeErrorMessage(err, "invalid request body"))
		return false
	}
	return true
}
