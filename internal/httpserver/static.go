package httpserver

import "embed"

//go:embed templates/*
var templateFiles embed.FS
