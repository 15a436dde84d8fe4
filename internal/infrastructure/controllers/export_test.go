package controllers

// DescribeFailure exports describeFailure for testing.
var DescribeFailure = describeFailure //nolint:gochecknoglobals // test export

// LoadSettings exports loadSettings for testing.
var LoadSettings = loadSettings //nolint:gochecknoglobals // test export

// CommandContext exports commandContext for testing.
var CommandContext = commandContext //nolint:gochecknoglobals // test export
