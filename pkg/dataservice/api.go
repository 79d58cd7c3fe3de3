package dataservice

import (
	"tracd.io/tracd/pkg/pb"
	"tracd.io/tracd/pkg/rpcstatus"
)

// Api is the grpc surface of the data service. Errors leave as grpc status
// errors with backend detail stripped from anything uncoded.
type Api struct {
	svc *Service
}

// NewApi wraps the data service core for grpc registration.
func NewApi(svc *Service) *Api { return &Api{svc: svc} }

var _ pb.TracDataApiServer = (*Api)(nil)

func (api *Api) CreateDataset(stream pb.TracDataApi_CreateDatasetServer) error {
	header, err := api.svc.writeDataset(stream.Context(), stream, false)
	if err != nil {
		return rpcstatus.ToGrpc(statusOf(err))
	}
	return Error.Wrap(stream.SendAndClose(header))
}

func (api *Api) UpdateDataset(stream pb.TracDataApi_UpdateDatasetServer) error {
	header, err := api.svc.writeDataset(stream.Context(), stream, true)
	if err != nil {
		return rpcstatus.ToGrpc(statusOf(err))
	}
	return Error.Wrap(stream.SendAndClose(header))
}

func (api *Api) ReadDataset(req *pb.DataReadRequest, stream pb.TracDataApi_ReadDatasetServer) error {
	if err := api.svc.readDataset(req, stream); err != nil {
		return rpcstatus.ToGrpc(statusOf(err))
	}
	return nil
}

func (api *Api) CreateFile(stream pb.TracDataApi_CreateFileServer) error {
	header, err := api.svc.writeFile(stream.Context(), stream, false)
	if err != nil {
		return rpcstatus.ToGrpc(statusOf(err))
	}
	return Error.Wrap(stream.SendAndClose(header))
}

func (api *Api) UpdateFile(stream pb.TracDataApi_UpdateFileServer) error {
	header, err := api.svc.writeFile(stream.Context(), stream, true)
	if err != nil {
		return rpcstatus.ToGrpc(statusOf(err))
	}
	return Error.Wrap(stream.SendAndClose(header))
}

func (api *Api) ReadFile(req *pb.FileReadRequest, stream pb.TracDataApi_ReadFileServer) error {
	if err := api.svc.readFile(req, stream); err != nil {
		return rpcstatus.ToGrpc(statusOf(err))
	}
	return nil
}
