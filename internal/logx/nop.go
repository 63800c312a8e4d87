package logx

// Nop returns a Logger that drops every entry. Handy for tests and optional collaborators.
func Nop() Logger { return discard{} }

type discard struct{}

var _ Logger = discard{}

func (discard) Debug(string, ...Field) {}
func (discard) Info(string, ...Field)  {}
func (discard) Warn(string, ...Field)  {}
func (discard) Error(string, ...Field) {}
func (discard) With(...Field) Logger   { return discard{} }
func (discard) Sync() error            { return nil }
