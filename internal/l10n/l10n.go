// Package l10n translates user-facing CLI messages.
package l10n

import (
	"fmt"

	"github.com/snapcore/go-gettext"
)

var locale gettext.Catalog

func init() {
	domain := gettext.TextDomain{Name: "aws-api-mcp"}
	locale = domain.UserLocale()
}

// T localizes str and formats it with vars, if any.
func T(str string, vars ...interface{}) string {
	translation := locale.Gettext(str)
	if len(vars) > 0 {
		translation = fmt.Sprintf(translation, vars...)
	}
	return translation
}
