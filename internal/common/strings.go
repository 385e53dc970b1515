package common

// UnknownStr is printed for enum values that have no name.
const UnknownStr = "unknown"
