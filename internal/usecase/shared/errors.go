package shared

import "tokengate/internal/pkg/errs"

var ErrShopNotFound = errs.NewMarked("shop not found", errs.ErrNotFound)
