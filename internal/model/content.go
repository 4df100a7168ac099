package model

// Content categories as stored in the data_content.category column.
const (
	CategoryMuseums            = "museums"
	CategoryVirtualExhibitions = "virtual_exhibitions"
	CategoryPoster             = "poster"
)

// ValidCategory reports whether the given category tag is one the site
// knows how to render and administer.
func ValidCategory(category string) bool {
	switch category {
	case CategoryMuseums, CategoryVirtualExhibitions, CategoryPoster:
		return true
	}
	return false
}

// ContentCard is a display unit describing a museum, a virtual exhibition
// or an event poster. CardImage, CardTitle and ShortDescription feed the
// listing pages; MainImage, MainText and the three block image/text pairs
// feed the detail page. Cards are created and edited only through the
// admin console; public routes read them.
type ContentCard struct {
	ID               uint64 // data_content.id
	Category         string // data_content.category
	CardImage        string // data_content.img_card
	CardTitle        string // data_content.title_card
	ShortDescription string // data_content.short_description_card
	MainImage        string // data_content.main_image
	MainText         string // data_content.main_text
	BlockImage1      string // data_content.block_image_1
	BlockText1       string // data_content.block_text_1
	BlockImage2      string // data_content.block_image_2
	BlockText2       string // data_content.block_text_2
	BlockImage3      string // data_content.block_image_3
	BlockText3       string // data_content.block_text_3
}
