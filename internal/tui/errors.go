// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import "strings"

// humanizeError turns a failure reported by a background task into a short
// message for the user.
func humanizeError(reason string) string {
	s := strings.ToLower(reason)
	switch {
	case reason == "":
		return ""
	case strings.Contains(s, "connection refused"),
		strings.Contains(s, "dial tcp"),
		strings.Contains(s, "no such host"),
		strings.Contains(s, "network is unreachable"),
		strings.Contains(s, "i/o timeout"),
		strings.Contains(s, "context deadline exceeded"):
		return "Отсутствует сеть или сервис фильмов недоступен"
	case strings.Contains(s, "rate limit"):
		return "Слишком много запросов к сервису фильмов, попробуйте позже"
	case strings.Contains(s, "movie not found"):
		return "Фильм не найден"
	default:
		return reason
	}
}
