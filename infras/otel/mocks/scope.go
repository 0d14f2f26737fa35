package mocks

import (
	"salon/infras/otel"
)

type scopeImpl struct {
}

// AddEvent implements otel.Scope.
func (s *scopeImpl) AddEvent(name string) {
}

// End implements otel.Scope.
func (s *scopeImpl) End() {
}

// SetAttribute implements otel.Scope.
func (s *scopeImpl) SetAttribute(key string, value any) {
}

// SetAttributes implements otel.Scope.
func (s *scopeImpl) SetAttributes(attributes map[string]any) {
}

// TraceError implements otel.Scope.
func (s *scopeImpl) TraceError(err error) {
}

// TraceIfError implements otel.Scope.
func (s *scopeImpl) TraceIfError(err error) {
}

func NewScope() otel.Scope {
	return &scopeImpl{}
}
