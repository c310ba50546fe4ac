package logger

// CollectMessages exposes the error chain walk for tests.
var CollectMessages = collectMessages
