// Package model defines the raw profile shape returned by the data source.
package model

// RawProfile is one profile as delivered by the remote endpoint
type RawProfile struct {
	Login   ProfileLogin   `json:"login"`
	Name    ProfileName    `json:"name"`
	Picture ProfilePicture `json:"picture"`
	Gender  string         `json:"gender"`
	Dob     ProfileDob     `json:"dob"`
}

// ProfileLogin carries the unique identity token
type ProfileLogin struct {
	UUID string `json:"uuid"`
}

// ProfileName holds the name parts
type ProfileName struct {
	Title string `json:"title,omitempty"`
	First string `json:"first"`
	Last  string `json:"last"`
}

// ProfilePicture holds the avatar variants, only Large is used
type ProfilePicture struct {
	Large     string `json:"large"`
	Medium    string `json:"medium,omitempty"`
	Thumbnail string `json:"thumbnail,omitempty"`
}

// ProfileDob holds the date of birth block
type ProfileDob struct {
	Date string `json:"date,omitempty"`
	Age  int    `json:"age"`
}

// ProfileEnvelope is the randomuser.me style response wrapping the profile array
type ProfileEnvelope struct {
	Results []RawProfile `json:"results"`
}
