package ecode

import (
	"fmt"
)

const (
	requiredMsg  = "required"
	invalidMsg   = "invalid"
	existMsg     = "already exists"
	notExistMsg  = "does not exist"
	tooShortMsg  = "is too short"
	tooLongMsg   = "is too long"
	notOneOfMsg  = "must be one of"
	notFormatMsg = "has an invalid format"
)

// FieldIsRequired returns field required message
func FieldIsRequired(k ...string) string {
	if len(k) > 0 {
		return fmt.Sprintf("%s %s", k[0], requiredMsg)
	}
	return requiredMsg
}

// FieldIsInvalid returns field invalid message
func FieldIsInvalid(k ...string) string {
	if len(k) > 0 {
		return fmt.Sprintf("%s %s", k[0], invalidMsg)
	}
	return invalidMsg
}

// FieldTooShort returns field too short message
func FieldTooShort(k string, limit string) string {
	return fmt.Sprintf("%s %s (min %s)", k, tooShortMsg, limit)
}

// FieldTooLong returns field too long message
func FieldTooLong(k string, limit string) string {
	return fmt.Sprintf("%s %s (max %s)", k, tooLongMsg, limit)
}

// FieldNotOneOf returns field enum message
func FieldNotOneOf(k string, allowed string) string {
	return fmt.Sprintf("%s %s [%s]", k, notOneOfMsg, allowed)
}

// FieldBadFormat returns field format message
func FieldBadFormat(k ...string) string {
	if len(k) > 0 {
		return fmt.Sprintf("%s %s", k[0], notFormatMsg)
	}
	return notFormatMsg
}

// AlreadyExist returns already exist message
func AlreadyExist(k ...string) string {
	if len(k) > 0 {
		return fmt.Sprintf("%s %s", k[0], existMsg)
	}
	return existMsg
}

// NotExist returns not exist message
func NotExist(k ...string) string {
	if len(k) > 0 {
		return fmt.Sprintf("%s %s", k[0], notExistMsg)
	}
	return notExistMsg
}
