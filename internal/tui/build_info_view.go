// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"strings"
)

func renderBuildInfoWindow(version string) string {
	var b strings.Builder

	b.WriteString("Название приложения: FilmKeeper\n")
	b.WriteString("Версия: ")
	b.WriteString(valueOrNA(version))

	return renderPage("ИНФОРМАЦИЯ О ПРОГРАММЕ", b.String(), "esc: назад")
}

func valueOrNA(v string) string {
	v = strings.TrimSpace(v)
	if v == "" {
		return "N/A"
	}
	return v
}
