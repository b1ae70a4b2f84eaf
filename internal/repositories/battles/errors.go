package battles

import apperr "github.com/KirkDiggler/kokoro-battle/internal/errors"

var (
	errNilRecord = apperr.InvalidArgument("battle record cannot be nil")
	errMissingID = apperr.InvalidArgument("battle record ID cannot be empty")
)
