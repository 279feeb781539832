package platform

// Package platform contains OS and file picker glue: the advisory document
// filter, turning picked or dropped URIs into model.SelectedFile values, and
// the default starting directory for the picker.
