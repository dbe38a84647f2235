// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package utils

import "strings"

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

// EscapeLike escapes the SQL LIKE wildcards in s so the backend matches
// them literally. The backslash is the escape character.
//
//	utils.EscapeLike("50%_off") // `50\%\_off`
func EscapeLike(s string) string {
	return likeEscaper.Replace(s)
}
