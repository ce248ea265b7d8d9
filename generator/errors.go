package generator

import "fmt"

// 输入校验错误
// 网格或参数不满足约束时直接失败并指明被破坏的约束，不做截断修正，也不做部分计算

type InvalidDomainError struct {
	Domain string // "time" / "depth"
	Reason string
}

func (e *InvalidDomainError) Error() string {
	return fmt.Sprintf("invalid %s domain: %s", e.Domain, e.Reason)
}

type InvalidParameterError struct {
	Name   string
	Reason string
}

func (e *InvalidParameterError) Error() string {
	return fmt.Sprintf("invalid parameter %s: %s", e.Name, e.Reason)
}
