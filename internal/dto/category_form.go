package dto

import (
	"net/url"

	"github.com/Eursukkul/eventhub/internal/models"
)

type CategoryForm struct {
	Name        string
	Description string
}

type CategoryInput struct {
	Name        string
	Description string
}

func BindCategoryForm(values url.Values) CategoryForm {
	return CategoryForm{
		Name:        values.Get("name"),
		Description: values.Get("description"),
	}
}

func CategoryFormFrom(c *models.Category) CategoryForm {
	return CategoryForm{Name: c.Name, Description: c.Description}
}

func (f CategoryForm) Validate() (CategoryInput, FieldErrors) {
	errs := FieldErrors{}
	in := CategoryInput{
		Name:        cleanText(errs, "name", f.Name, 100),
		Description: cleanText(errs, "description", f.Description, 0),
	}
	return in, errs
}

func (in CategoryInput) Apply(c *models.Category) {
	c.Name = in.Name
	c.Description = in.Description
}
