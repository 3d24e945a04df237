//go:generate ${TOOLS_PATH}/mockgen -source ${GOFILE} -destination mock/${GOFILE} -package mock -mock_names "Dispatcher=Dispatcher"
package event

import "context"

type Dispatcher interface {
	Dispatch(ctx context.Context, events ...Event) error
}
