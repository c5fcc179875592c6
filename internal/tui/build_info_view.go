// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"strings"

	"github.com/MKhiriev/go-note-sync/models"
)

// RenderBuildInfo renders the client build information and the version
// reported by the server. An empty serverVersion means the server could not
// be asked.
func RenderBuildInfo(info models.AppBuildInfo, serverVersion string) string {
	var b strings.Builder

	b.WriteString("Client version: ")
	b.WriteString(valueOrNA(info.BuildVersion()))
	b.WriteString("\nBuild date:     ")
	b.WriteString(valueOrNA(info.BuildDate()))
	b.WriteString("\nBuild commit:   ")
	b.WriteString(valueOrNA(info.BuildCommit()))
	b.WriteString("\nServer version: ")
	b.WriteString(valueOrNA(serverVersion))

	return renderPage("go-note-sync", b.String())
}
