package app

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSplitTags(t *testing.T) {
	cases := []struct {
		in   string
		want []string
	}{
		{"友好, 活泼,  ", []string{"友好", "活泼"}},
		{"温顺", []string{"温顺"}},
		{"", []string{}},
		{" , , ", []string{}},
		{"a,b , c", []string{"a", "b", "c"}},
	}

	for _, tc := range cases {
		assert.Equal(t, tc.want, SplitTags(tc.in), "input %q", tc.in)
	}
}

func TestAdoptionFormValidate(t *testing.T) {
	assert.Error(t, AdoptionForm{}.Validate())
	assert.Error(t, AdoptionForm{ContactInfo: "138-0000"}.Validate())
	assert.NoError(t, AdoptionForm{ContactInfo: "138-0000", Message: "我有养狗经验"}.Validate())
}

func TestPetFormValidate(t *testing.T) {
	valid := PetForm{
		Name:        "小白",
		Species:     "dog",
		Breed:       "柴犬",
		Age:         "2岁",
		ImageURL:    "https://example.com/p.jpg",
		Description: "很乖",
		Contact:     "139-0000",
	}
	assert.NoError(t, valid.Validate())

	bad := valid
	bad.Species = "hamster"
	assert.Error(t, bad.Validate(), "la especie debe ser dog/cat/rabbit")

	bad = valid
	bad.Name = ""
	assert.Error(t, bad.Validate())

	// Tags es opcional
	withTags := valid
	withTags.Tags = "友好, 活泼"
	assert.NoError(t, withTags.Validate())
}

func TestPostFormValidate(t *testing.T) {
	assert.Error(t, PostForm{Title: "求助"}.Validate())
	assert.NoError(t, PostForm{Title: "求助", Content: "谁能推荐兽医"}.Validate())
}
