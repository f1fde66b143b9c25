package content_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/danielasalgadov/zona-de-riego/internal/content"
)

func TestLoad_Success(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "content.json")

	blob := `{
		"site_name": {"es": "Zona de Riego", "en": "Irrigation Zone"},
		"tagline": {"es": "Riego profesional", "en": "Professional irrigation"},
		"sections": {
			"hero": {
				"title": {"es": "Bienvenido", "en": "Welcome"},
				"body": {"es": "Cuidamos tu jardin", "en": "We care for your garden"}
			}
		}
	}`
	if err := os.WriteFile(path, []byte(blob), 0o644); err != nil {
		t.Fatalf("write fixture: %v", err)
	}

	c, err := content.Load(path)
	assert.NoError(t, err)
	assert.Equal(t, "Zona de Riego", c.SiteName.ES)
	assert.Equal(t, "Irrigation Zone", c.SiteName.EN)
	assert.Equal(t, "Bienvenido", c.Sections["hero"].Title.ES)
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := content.Load(filepath.Join(t.TempDir(), "nope.json"))
	assert.Error(t, err)
}

func TestLoad_InvalidJSON(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "content.json")
	os.WriteFile(path, []byte("{not json"), 0o644)

	_, err := content.Load(path)
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "parse content file")
}
