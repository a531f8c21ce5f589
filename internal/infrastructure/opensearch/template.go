// Copyright The Storefront Commerce Authors.
// SPDX-License-Identifier: MIT

package opensearch

import (
	"strconv"
	"text/template"
)

var queryProductTemplate = template.Must(
	template.New("queryProduct").
		Funcs(template.FuncMap{
			"quote": strconv.Quote,
		}).
		Parse(queryProductSource))
