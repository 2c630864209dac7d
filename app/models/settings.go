package models

import "fmt"

// Settings is the school-wide fee schedule. Exactly one record exists after
// initialization; it is merge-patched, never deleted.
type Settings struct {
	MonthlyPG      int64 `json:"monthlyPG"`
	MonthlyKG      int64 `json:"monthlyKG"`
	MonthlyNursery int64 `json:"monthlyNursery"`
	Monthly1       int64 `json:"monthly1"`
	Monthly2       int64 `json:"monthly2"`
	Monthly3       int64 `json:"monthly3"`
	Monthly4       int64 `json:"monthly4"`
	Monthly5       int64 `json:"monthly5"`
	Monthly6       int64 `json:"monthly6"`
	Transport      int64 `json:"transport"`
	Diet           int64 `json:"diet"`
	Exam           int64 `json:"exam"`
}

// MonthlyFeeForClass maps a class name to its monthly fee tier.
func (s *Settings) MonthlyFeeForClass(class string) (int64, error) {
	switch class {
	case "P.G.":
		return s.MonthlyPG, nil
	case "K.G.":
		return s.MonthlyKG, nil
	case "nursery":
		return s.MonthlyNursery, nil
	case "1":
		return s.Monthly1, nil
	case "2":
		return s.Monthly2, nil
	case "3":
		return s.Monthly3, nil
	case "4":
		return s.Monthly4, nil
	case "5":
		return s.Monthly5, nil
	case "6":
		return s.Monthly6, nil
	default:
		return 0, fmt.Errorf("unknown class %q", class)
	}
}
