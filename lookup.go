package httpstatus

// NotFoundMessage is reported when a query matches no record.
const NotFoundMessage = "Can't find the code"

// FindByCode returns every status whose code equals code exactly.
// Returns ENOTFOUND if there is none.
func FindByCode(statuses []Status, code string) ([]Status, error) {
	return filter(statuses, func(s Status) bool { return s.Code == code })
}

// FindByKeyword returns every status whose code, phrase or description
// contains keyword. Matching is case-sensitive.
// Returns ENOTFOUND if there is none.
func FindByKeyword(statuses []Status, keyword string) ([]Status, error) {
	return filter(statuses, func(s Status) bool { return s.Contains(keyword) })
}

// ListAll returns the dataset as is.
func ListAll(statuses []Status) []Status {
	return statuses
}

// FindStatuses applies a StatusFilter to statuses.
func FindStatuses(statuses []Status, f StatusFilter) ([]Status, error) {
	switch {
	case f.Keyword != nil:
		return FindByKeyword(statuses, *f.Keyword)
	case f.Code != nil:
		return FindByCode(statuses, *f.Code)
	default:
		return ListAll(statuses), nil
	}
}

func filter(statuses []Status, match func(Status) bool) ([]Status, error) {
	var ret []Status
	for _, s := range statuses {
		if match(s) {
			ret = append(ret, s)
		}
	}
	if len(ret) == 0 {
		return nil, Errorf(ENOTFOUND, NotFoundMessage)
	}
	return ret, nil
}
