package service

import "fmt"

// Kind 业务错误类型，均可由调用方处理，不会导致进程退出
type Kind int

const (
	KindAlreadyMember Kind = iota + 1
	KindNotMember
	KindSelfReference
	KindDuplicateInRequest
	KindUnknownReference
	KindEmptyRequiredSet
	KindInvalidAmount
	KindInvalidArgument
	KindNotFound
	KindForbidden
	KindUnauthorized
)

// Error 业务错误。errors.Is 只比较 Kind，Msg 是给客户端看的说明
type Error struct {
	Kind Kind
	Msg  string
}

func (e *Error) Error() string {
	return e.Msg
}

func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	return ok && t.Kind == e.Kind
}

func newError(kind Kind, format string, args ...any) *Error {
	return &Error{Kind: kind, Msg: fmt.Sprintf(format, args...)}
}

var (
	ErrAlreadyMember      = &Error{Kind: KindAlreadyMember, Msg: "记录已存在"}
	ErrNotMember          = &Error{Kind: KindNotMember, Msg: "记录不存在"}
	ErrSelfReference      = &Error{Kind: KindSelfReference, Msg: "不能关注自己"}
	ErrDuplicateInRequest = &Error{Kind: KindDuplicateInRequest, Msg: "提交的数据存在重复项"}
	ErrUnknownReference   = &Error{Kind: KindUnknownReference, Msg: "引用的数据不存在"}
	ErrEmptyRequiredSet   = &Error{Kind: KindEmptyRequiredSet, Msg: "必填集合为空"}
	ErrInvalidAmount      = &Error{Kind: KindInvalidAmount, Msg: "食材数量不能小于 1"}
	ErrInvalidArgument    = &Error{Kind: KindInvalidArgument, Msg: "参数错误"}
	ErrNotFound           = &Error{Kind: KindNotFound, Msg: "资源不存在"}
	ErrForbidden          = &Error{Kind: KindForbidden, Msg: "无权操作"}
	ErrUnauthorized       = &Error{Kind: KindUnauthorized, Msg: "未登录"}
)
