// Copyright (c) 2025 Visvasity LLC

package nonmax

//go:generate go run github.com/visvasity/nonmaxgen -outdir .
