// Package forms declares the form field sets and their validation
// rules, plus the translation of validator failures into the inline
// messages the templates display.
package forms

import (
	"errors"
	"fmt"

	"github.com/go-playground/validator/v10"
)

type RegisterForm struct {
	FirstName string `form:"f_name" binding:"required"`
	LastName  string `form:"l_name" binding:"required"`
	Email     string `form:"email" binding:"required,email,max=100"`
	Password  string `form:"password" binding:"required,min=8,max=100"`
}

type LoginForm struct {
	Email    string `form:"email" binding:"required,email"`
	Password string `form:"password" binding:"required"`
}

type PostForm struct {
	LocationName string `form:"location_name" binding:"required,max=100"`
	Country      string `form:"country" binding:"required,max=100"`
	ImgURL       string `form:"img_url" binding:"required,url,max=250"`
	Description  string `form:"description" binding:"required"`
}

type CommentForm struct {
	Text string `form:"text" binding:"required"`
}

// labels maps struct field names to the labels shown next to inline errors.
var labels = map[string]string{
	"FirstName":    "First Name",
	"LastName":     "Last Name",
	"Email":        "Email",
	"Password":     "Password",
	"LocationName": "Location Name",
	"Country":      "Country",
	"ImgURL":       "Blog Image URL",
	"Description":  "Description",
	"Text":         "Comment",
}

// FieldErrors turns a binding error into per-field messages keyed by
// field name. Non-validator errors map to a single "form" entry.
func FieldErrors(err error) map[string]string {
	out := make(map[string]string)

	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		out["form"] = "Invalid form submission."
		return out
	}

	for _, fe := range verrs {
		label := labels[fe.Field()]
		if label == "" {
			label = fe.Field()
		}
		switch fe.Tag() {
		case "required":
			out[fe.Field()] = fmt.Sprintf("%s is required.", label)
		case "email":
			out[fe.Field()] = "Please enter a valid email address."
		case "url":
			out[fe.Field()] = "Please enter a valid URL."
		case "min":
			out[fe.Field()] = fmt.Sprintf("%s should be at least %s characters long.", label, fe.Param())
		case "max":
			out[fe.Field()] = fmt.Sprintf("%s should be at most %s characters long.", label, fe.Param())
		default:
			out[fe.Field()] = fmt.Sprintf("%s is invalid.", label)
		}
	}
	return out
}
