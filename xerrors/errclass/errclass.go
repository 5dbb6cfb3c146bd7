// Package errclass provides functions for simple error classification.
package errclass

import (
	"github.com/lijunyuCN/go-lazyseq/xerrors"
)

// Class represents a type of error.
type Class int

// The allowed error classifications. The values are arbitrary but provide a
// strict ordering, where the higher the value, the more severe the error.
// When determining the class of a joined error, the highest class wins.
const (
	Nil     Class = -1
	Unknown Class = 0

	// Misuse marks a violated API precondition, such as navigating a
	// collection position past its bounds.
	Misuse Class = 500

	Panic Class = 900
)

// String implements the stringer interface.
func (c Class) String() string {
	switch c {
	case Nil:
		return "nil"
	case Misuse:
		return "misuse"
	case Panic:
		return "panic"
	default:
		return "unknown"
	}
}

// WrapAs extends an error with the given class data.
func WrapAs(err error, class Class) error {
	if err == nil {
		return nil
	}
	return xerrors.Extend(class, err)
}

// GetClass extracts the Class from an error.
func GetClass(err error) Class {
	if err == nil {
		return Nil
	}

	maxClass := Nil
	for _, joinedErr := range xerrors.Unjoin(err) {
		class, ok := xerrors.Extract[Class](joinedErr)
		switch {
		case ok && class > maxClass:
			maxClass = class
		case !ok && maxClass < Unknown:
			maxClass = Unknown
		}
	}
	return maxClass
}
