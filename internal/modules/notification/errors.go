package notification

import "errors"

var ErrNoFeed = errors.New("notifications are not available for this account")
