package directory_test

import (
	"github.com/ortelius/userdir-backend/model"
)

func rawProfile(uuid, first, last, gender string, age int) model.RawProfile {
	return model.RawProfile{
		Login:   model.ProfileLogin{UUID: uuid},
		Name:    model.ProfileName{First: first, Last: last},
		Picture: model.ProfilePicture{Large: "https://randomuser.me/api/portraits/" + uuid + ".jpg"},
		Gender:  gender,
		Dob:     model.ProfileDob{Age: age},
	}
}

func records(names ...string) []model.UserRecord {
	out := make([]model.UserRecord, 0, len(names))
	for i, name := range names {
		gender := model.GenderMale
		if i%2 == 1 {
			gender = model.GenderFemale
		}
		out = append(out, model.NewUserRecord(name, name, "", gender, 20+i))
	}
	return out
}

func names(records []model.UserRecord) []string {
	out := make([]string, 0, len(records))
	for _, r := range records {
		out = append(out, r.DisplayName)
	}
	return out
}
