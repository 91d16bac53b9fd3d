package utils_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/shopward/shopward_backend/internal/utils"
)

func TestUniqueUploadFilename_StripsSpacesAndKeepsExtension(t *testing.T) {
	name := utils.UniqueUploadFilename("my photo.png")

	assert.True(t, strings.HasPrefix(name, "myphoto-"))
	assert.True(t, strings.HasSuffix(name, ".png"))
	assert.NotContains(t, name, " ")
}

func TestUniqueUploadFilename_NoExtension(t *testing.T) {
	name := utils.UniqueUploadFilename("README")

	assert.True(t, strings.HasPrefix(name, "README-"))
	assert.NotContains(t, name, ".")
}

func TestUniqueUploadFilename_CollisionFree(t *testing.T) {
	a := utils.UniqueUploadFilename("pic.jpg")
	b := utils.UniqueUploadFilename("pic.jpg")

	assert.NotEqual(t, a, b)
}
