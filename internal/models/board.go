package models

import (
	"time"
)

const (
	OBJECT_TYPE_RECTANGLE = "rectangle"
	OBJECT_TYPE_CIRCLE    = "circle"
	OBJECT_TYPE_LINE      = "line"
	OBJECT_TYPE_IMAGE     = "image"
	OBJECT_TYPE_VIDEO     = "video"
)

// CanvasObject is one shape/media element on a board. Optional fields are
// pointers so that absent values stay absent on the wire.
type CanvasObject struct {
	Id             string     `json:"id"`
	Type           string     `json:"type"`
	X              float64    `json:"x"`
	Y              float64    `json:"y"`
	Width          *float64   `json:"width,omitempty"`
	Height         *float64   `json:"height,omitempty"`
	Fill           *string    `json:"fill,omitempty"`
	Stroke         *string    `json:"stroke,omitempty"`
	StrokeWidth    *float64   `json:"strokeWidth,omitempty"`
	Text           *string    `json:"text,omitempty"`
	FontSize       *float64   `json:"fontSize,omitempty"`
	Src            *string    `json:"src,omitempty"`
	VideoUrl       *string    `json:"videoUrl,omitempty"`
	Points         []float64  `json:"points,omitempty"`
	CreatedBy      string     `json:"createdBy"`
	CreatedAt      time.Time  `json:"createdAt"`
	LastModifiedBy *string    `json:"lastModifiedBy,omitempty"`
	LastModified   *time.Time `json:"lastModified,omitempty"`
}

// ObjectUpdate carries the mutable fields of a CanvasObject for a shallow
// merge: a nil field is retained, a set field overwrites. Type is excluded,
// it is immutable after creation.
type ObjectUpdate struct {
	X           *float64  `json:"x,omitempty"`
	Y           *float64  `json:"y,omitempty"`
	Width       *float64  `json:"width,omitempty"`
	Height      *float64  `json:"height,omitempty"`
	Fill        *string   `json:"fill,omitempty"`
	Stroke      *string   `json:"stroke,omitempty"`
	StrokeWidth *float64  `json:"strokeWidth,omitempty"`
	Text        *string   `json:"text,omitempty"`
	FontSize    *float64  `json:"fontSize,omitempty"`
	Src         *string   `json:"src,omitempty"`
	VideoUrl    *string   `json:"videoUrl,omitempty"`
	Points      []float64 `json:"points,omitempty"`
}

// ApplyTo merges the set fields into object, field by field.
func (u *ObjectUpdate) ApplyTo(object *CanvasObject) {
	if u.X != nil {
		object.X = *u.X
	}
	if u.Y != nil {
		object.Y = *u.Y
	}
	if u.Width != nil {
		object.Width = u.Width
	}
	if u.Height != nil {
		object.Height = u.Height
	}
	if u.Fill != nil {
		object.Fill = u.Fill
	}
	if u.Stroke != nil {
		object.Stroke = u.Stroke
	}
	if u.StrokeWidth != nil {
		object.StrokeWidth = u.StrokeWidth
	}
	if u.Text != nil {
		object.Text = u.Text
	}
	if u.FontSize != nil {
		object.FontSize = u.FontSize
	}
	if u.Src != nil {
		object.Src = u.Src
	}
	if u.VideoUrl != nil {
		object.VideoUrl = u.VideoUrl
	}
	if u.Points != nil {
		object.Points = u.Points
	}
}

// Board is a named canvas. The order of Objects is the z-order,
// back to front.
type Board struct {
	Id           string         `json:"id"`
	Name         string         `json:"name"`
	Objects      []CanvasObject `json:"objects"`
	Background   string         `json:"background"`
	CreatedAt    time.Time      `json:"createdAt"`
	LastModified time.Time      `json:"lastModified"`
}

type BoardSummary struct {
	Id           string    `json:"id"`
	Name         string    `json:"name"`
	LastModified time.Time `json:"lastModified"`
	ObjectCount  int       `json:"objectCount"`
	CreatedAt    time.Time `json:"createdAt"`
}

type TemplateSection struct {
	Title string  `json:"title"`
	Color string  `json:"color"`
	X     float64 `json:"x"`
	Y     float64 `json:"y"`
}

type BoardTemplate struct {
	Sections []TemplateSection `json:"sections"`
}

type CreateBoardRequest struct {
	Name     *string        `json:"name"`
	Template *BoardTemplate `json:"template"`
}
