package i

// Logger is the logging surface used by services and controllers.
type Logger interface {
	Info(string)
	Warning(string)
	Error(string)
}
