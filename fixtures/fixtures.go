// Package fixtures provide ready-made leaf generators for common random test data.
package fixtures

import (
	randomdata "github.com/Pallinder/go-randomdata"
	uuid "github.com/satori/go.uuid"

	"github.com/adamluzsi/generators"
)

// UUIDs generates random V4 UUID strings.
func UUIDs() *generators.Owned[string] {
	return generators.Func(func() string {
		return uuid.NewV4().String()
	})
}

// SillyNames generates random silly names, e.g. for user or project name fields.
func SillyNames() *generators.Owned[string] {
	return generators.Func(randomdata.SillyName)
}

// Emails generates random email addresses.
func Emails() *generators.Owned[string] {
	return generators.Func(randomdata.Email)
}

// IPv4Addresses generates random IPv4 addresses in dotted decimal form.
func IPv4Addresses() *generators.Owned[string] {
	return generators.Func(randomdata.IpV4Address)
}
