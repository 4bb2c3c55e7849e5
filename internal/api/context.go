package api

import (
	"context"

	"github.com/CaptainChua/Staycation/internal/operator"
)

type ctxKey string

const ctxKeyOperator ctxKey = "operator"

func WithOperator(ctx context.Context, op *operator.Operator) context.Context {
	return context.WithValue(ctx, ctxKeyOperator, op)
}

func OperatorFromContext(ctx context.Context) *operator.Operator {
	v := ctx.Value(ctxKeyOperator)
	if v == nil {
		return nil
	}
	op, _ := v.(*operator.Operator)
	return op
}
