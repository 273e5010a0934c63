package main

import (
	"fmt"

	"github.com/fwojciec/httpstatus"
)

// Filter builds the status filter for the command's arguments.
// The search keyword wins over the code when both are given, even when empty.
func (c *FindCmd) Filter() httpstatus.StatusFilter {
	var filter httpstatus.StatusFilter
	if c.Search != nil {
		filter.Keyword = c.Search
	} else if c.Code != "" {
		filter.Code = &c.Code
	}
	return filter
}

// Run executes the find command.
func (c *FindCmd) Run(deps *Dependencies) error {
	statuses, err := deps.Statuses.FindStatuses(deps.Ctx, c.Filter())
	if httpstatus.ErrorCode(err) == httpstatus.ENOTFOUND {
		fmt.Fprintln(deps.Stdout, httpstatus.ErrorMessage(err))
		return ErrNoMatch
	}
	if err != nil {
		return err
	}

	fmt.Fprint(deps.Stdout, httpstatus.FormatStatuses(statuses))
	return nil
}
