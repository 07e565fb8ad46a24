package models

import "html/template"

type Post struct {
	ID           uint   `gorm:"primaryKey" json:"id"`
	LocationName string `gorm:"type:varchar(100);not null" json:"locationName"`
	Country      string `gorm:"type:varchar(100);not null" json:"country"`
	ImgURL       string `gorm:"type:varchar(250);not null" json:"imgUrl"`
	Description  string `gorm:"type:text;not null" json:"description"`
	CreateDate   string `gorm:"type:varchar(20);not null" json:"createDate"`
}

// DescriptionHTML renders the stored rich-text body without escaping.
// The description is only ever written by an admin through the post form.
func (p Post) DescriptionHTML() template.HTML {
	return template.HTML(p.Description)
}
