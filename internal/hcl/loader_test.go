package hcl

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoad(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "vars.hcl", `
condition "is_unix" {
  expression = "vars[\"os.name\"] != \"windows\""
}

variable "app.name" {
  value      = "Acme Suite"
  check_once = true
}

variable "install.path" {
  value      = "/opt/$${app.name}"
  condition  = "is_unix"
  auto_unset = true
}

variable "java.home" {
  environment = "JAVA_HOME"
}
`)

	loader := NewLoader()
	model, err := loader.Load(context.Background(), dir)
	require.NoError(t, err)

	require.Len(t, model.Conditions, 1)
	assert.Equal(t, "is_unix", model.Conditions[0].ID)
	assert.Equal(t, `vars["os.name"] != "windows"`, model.Conditions[0].Expression)

	require.Len(t, model.Variables, 3)

	appName := model.Variables[0]
	assert.Equal(t, "app.name", appName.Name)
	require.NotNil(t, appName.Value)
	assert.Equal(t, "Acme Suite", *appName.Value)
	assert.True(t, appName.CheckOnce)
	assert.False(t, appName.AutoUnset)

	installPath := model.Variables[1]
	assert.Equal(t, "install.path", installPath.Name)
	require.NotNil(t, installPath.Value)
	// $${...} is HCL's escape for a literal ${...}.
	assert.Equal(t, "/opt/${app.name}", *installPath.Value)
	assert.Equal(t, "is_unix", installPath.ConditionID)
	assert.True(t, installPath.AutoUnset)

	javaHome := model.Variables[2]
	assert.Equal(t, "java.home", javaHome.Name)
	assert.Nil(t, javaHome.Value)
	require.NotNil(t, javaHome.Environment)
	assert.Equal(t, "JAVA_HOME", *javaHome.Environment)
}

func TestLoad_MultipleFilesPreserveOrder(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "a.hcl", `
variable "first" {
  value = "1"
}
`)
	writeFile(t, dir, "b.hcl", `
variable "second" {
  value = "2"
}
`)

	model, err := NewLoader().Load(context.Background(), dir)
	require.NoError(t, err)
	require.Len(t, model.Variables, 2)
	assert.Equal(t, "first", model.Variables[0].Name)
	assert.Equal(t, "second", model.Variables[1].Name)
}

func TestLoad_MissingPathIsSkipped(t *testing.T) {
	model, err := NewLoader().Load(context.Background(), filepath.Join(t.TempDir(), "nope"))
	require.NoError(t, err)
	assert.Empty(t, model.Variables)
}

func TestLoad_Errors(t *testing.T) {
	t.Run("value and environment together", func(t *testing.T) {
		dir := t.TempDir()
		writeFile(t, dir, "bad.hcl", `
variable "a" {
  value       = "x"
  environment = "X"
}
`)
		_, err := NewLoader().Load(context.Background(), dir)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "exactly one of 'value' and 'environment'")
	})

	t.Run("neither value nor environment", func(t *testing.T) {
		dir := t.TempDir()
		writeFile(t, dir, "bad.hcl", `
variable "a" {
}
`)
		_, err := NewLoader().Load(context.Background(), dir)
		require.Error(t, err)
	})

	t.Run("condition without expression", func(t *testing.T) {
		dir := t.TempDir()
		writeFile(t, dir, "bad.hcl", `
condition "c" {
}
`)
		_, err := NewLoader().Load(context.Background(), dir)
		require.Error(t, err)
	})

	t.Run("unescaped interpolation is rejected", func(t *testing.T) {
		dir := t.TempDir()
		writeFile(t, dir, "bad.hcl", `
variable "a" {
  value = "${not.escaped}"
}
`)
		_, err := NewLoader().Load(context.Background(), dir)
		require.Error(t, err)
	})

	t.Run("unparseable file", func(t *testing.T) {
		dir := t.TempDir()
		writeFile(t, dir, "bad.hcl", `variable "a" {`)
		_, err := NewLoader().Load(context.Background(), dir)
		require.Error(t, err)
	})
}
