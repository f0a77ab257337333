package grpc

import (
	"context"
	"errors"

	"github.com/dmitrijs2005/syncserver/internal/common"
	pb "github.com/dmitrijs2005/syncserver/internal/proto"
	"github.com/dmitrijs2005/syncserver/internal/server/models"
	"github.com/dmitrijs2005/syncserver/internal/server/services"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

// toStatus maps service errors to gRPC status codes. Anything unexpected is
// logged and hidden behind Internal.
func (s *GRPCServer) toStatus(ctx context.Context, method string, err error) error {
	switch {
	case errors.Is(err, common.ErrorInvalidArgument):
		return status.Error(codes.InvalidArgument, err.Error())
	case errors.Is(err, common.ErrorNotFound):
		return status.Error(codes.NotFound, err.Error())
	case errors.Is(err, common.ErrSequencing):
		return status.Error(codes.FailedPrecondition, err.Error())
	case errors.Is(err, common.ErrorUnauthorized):
		return status.Error(codes.Unauthenticated, "unauthorized")
	}
	s.logger.Error(ctx, "request failed", "method", method, "error", err)
	return status.Error(codes.Internal, "internal error")
}

func staleVersion(outcome services.Outcome, current int64) *int64 {
	if outcome != services.OutcomeVersionStale {
		return nil
	}
	return &current
}

func toModelAppMetaData(md *pb.AppMetaData) *models.AppMetaData {
	if md == nil {
		return nil
	}
	return &models.AppMetaData{Version: md.Version, Contents: md.Contents}
}

func toPBAppMetaData(md *models.AppMetaData) *pb.AppMetaData {
	if md == nil {
		return nil
	}
	return &pb.AppMetaData{Version: md.Version, Contents: md.Contents}
}

func (s *GRPCServer) Ping(ctx context.Context, req *pb.PingRequest) (*pb.PingResponse, error) {
	return &pb.PingResponse{Status: "OK"}, nil
}

func (s *GRPCServer) CreateSharingGroup(ctx context.Context, req *pb.CreateSharingGroupRequest) (*pb.CreateSharingGroupResponse, error) {
	if _, err := identityFrom(ctx); err != nil {
		return nil, err
	}

	sg, err := s.sync.CreateSharingGroup(ctx, req.Name)
	if err != nil {
		return nil, s.toStatus(ctx, "CreateSharingGroup", err)
	}

	return &pb.CreateSharingGroupResponse{SharingGroupId: sg.ID}, nil
}

func (s *GRPCServer) DeleteSharingGroup(ctx context.Context, req *pb.DeleteSharingGroupRequest) (*pb.DeleteSharingGroupResponse, error) {
	if _, err := identityFrom(ctx); err != nil {
		return nil, err
	}

	if err := s.sync.DeleteSharingGroup(ctx, req.SharingGroupId); err != nil {
		return nil, s.toStatus(ctx, "DeleteSharingGroup", err)
	}

	return &pb.DeleteSharingGroupResponse{}, nil
}

func (s *GRPCServer) UploadFile(ctx context.Context, req *pb.UploadFileRequest) (*pb.UploadFileResponse, error) {
	id, err := identityFrom(ctx)
	if err != nil {
		return nil, err
	}

	res, err := s.sync.UploadFile(ctx, services.StageRequest{
		SharingGroupID:  req.SharingGroupId,
		DeviceID:        id.DeviceID,
		FileID:          req.FileId,
		FileVersion:     req.FileVersion,
		MimeType:        req.MimeType,
		CloudFolderName: req.CloudFolderName,
		SizeBytes:       req.SizeBytes,
		AppMetaData:     toModelAppMetaData(req.AppMetaData),
		MasterVersion:   req.MasterVersion,
	})
	if err != nil {
		return nil, s.toStatus(ctx, "UploadFile", err)
	}

	return &pb.UploadFileResponse{
		ObjectName:          res.ObjectName,
		UploadUrl:           res.UploadURL,
		AlreadyStaged:       res.Outcome == services.OutcomeAlreadyStaged,
		MasterVersionUpdate: staleVersion(res.Outcome, res.MasterVersion),
	}, nil
}

func (s *GRPCServer) UploadDeletion(ctx context.Context, req *pb.UploadDeletionRequest) (*pb.UploadDeletionResponse, error) {
	id, err := identityFrom(ctx)
	if err != nil {
		return nil, err
	}

	res, err := s.sync.UploadDeletion(ctx, req.SharingGroupId, id.DeviceID, req.FileId, req.FileVersion, req.MasterVersion)
	if err != nil {
		return nil, s.toStatus(ctx, "UploadDeletion", err)
	}

	return &pb.UploadDeletionResponse{
		AlreadyStaged:       res.Outcome == services.OutcomeAlreadyStaged,
		MasterVersionUpdate: staleVersion(res.Outcome, res.MasterVersion),
	}, nil
}

func (s *GRPCServer) UploadAppMetaData(ctx context.Context, req *pb.UploadAppMetaDataRequest) (*pb.UploadAppMetaDataResponse, error) {
	id, err := identityFrom(ctx)
	if err != nil {
		return nil, err
	}

	res, err := s.sync.UploadAppMetaData(ctx, req.SharingGroupId, id.DeviceID, req.FileId,
		toModelAppMetaData(req.AppMetaData), req.MasterVersion)
	if err != nil {
		return nil, s.toStatus(ctx, "UploadAppMetaData", err)
	}

	return &pb.UploadAppMetaDataResponse{
		AlreadyStaged:       res.Outcome == services.OutcomeAlreadyStaged,
		MasterVersionUpdate: staleVersion(res.Outcome, res.MasterVersion),
	}, nil
}

func (s *GRPCServer) DoneUploads(ctx context.Context, req *pb.DoneUploadsRequest) (*pb.DoneUploadsResponse, error) {
	id, err := identityFrom(ctx)
	if err != nil {
		return nil, err
	}

	res, err := s.sync.DoneUploads(ctx, req.SharingGroupId, id.DeviceID, req.MasterVersion)
	if err != nil {
		return nil, s.toStatus(ctx, "DoneUploads", err)
	}

	resp := &pb.DoneUploadsResponse{}
	switch res.Outcome {
	case services.OutcomeCommitted:
		resp.NumberUploadsTransferred = int64(res.NumberTransferred)
		resp.MasterVersion = res.MasterVersion
	case services.OutcomeVersionStale:
		resp.MasterVersionUpdate = staleVersion(res.Outcome, res.MasterVersion)
	case services.OutcomeLockHeld:
		resp.CouldNotObtainLock = true
	}
	return resp, nil
}

func (s *GRPCServer) FileIndex(ctx context.Context, req *pb.FileIndexRequest) (*pb.FileIndexResponse, error) {
	id, err := identityFrom(ctx)
	if err != nil {
		return nil, err
	}

	res, err := s.sync.FileIndex(ctx, req.SharingGroupId, id.DeviceID)
	if err != nil {
		return nil, s.toStatus(ctx, "FileIndex", err)
	}

	if res.Outcome == services.OutcomeLockHeld {
		return &pb.FileIndexResponse{CouldNotObtainLock: true}, nil
	}

	files := make([]*pb.FileInfo, 0, len(res.Files))
	for _, f := range res.Files {
		files = append(files, &pb.FileInfo{
			FileId:          f.FileID,
			DeviceId:        f.DeviceID,
			MimeType:        f.MimeType,
			CloudFolderName: f.CloudFolderName,
			FileVersion:     f.FileVersion,
			SizeBytes:       f.SizeBytes,
			Deleted:         f.Deleted,
			AppMetaData:     toPBAppMetaData(f.AppMetaData),
		})
	}

	return &pb.FileIndexResponse{MasterVersion: res.MasterVersion, Files: files}, nil
}

func (s *GRPCServer) GetUploads(ctx context.Context, req *pb.GetUploadsRequest) (*pb.GetUploadsResponse, error) {
	id, err := identityFrom(ctx)
	if err != nil {
		return nil, err
	}

	staged, err := s.sync.GetUploads(ctx, req.SharingGroupId, id.DeviceID)
	if err != nil {
		return nil, s.toStatus(ctx, "GetUploads", err)
	}

	uploads := make([]*pb.UploadInfo, 0, len(staged))
	for _, u := range staged {
		uploads = append(uploads, &pb.UploadInfo{
			FileId:          u.FileID,
			Kind:            string(u.Kind),
			FileVersion:     u.FileVersion,
			MimeType:        u.MimeType,
			CloudFolderName: u.CloudFolderName,
			SizeBytes:       u.SizeBytes,
			AppMetaData:     toPBAppMetaData(u.AppMetaData),
		})
	}

	return &pb.GetUploadsResponse{Uploads: uploads}, nil
}

func (s *GRPCServer) DownloadFile(ctx context.Context, req *pb.DownloadFileRequest) (*pb.DownloadFileResponse, error) {
	id, err := identityFrom(ctx)
	if err != nil {
		return nil, err
	}

	res, err := s.sync.DownloadFile(ctx, req.SharingGroupId, id.DeviceID, req.FileId, req.FileVersion, req.MasterVersion)
	if err != nil {
		return nil, s.toStatus(ctx, "DownloadFile", err)
	}

	if res.Outcome == services.OutcomeVersionStale {
		return &pb.DownloadFileResponse{MasterVersionUpdate: staleVersion(res.Outcome, res.MasterVersion)}, nil
	}

	return &pb.DownloadFileResponse{
		DownloadUrl: res.URL,
		SizeBytes:   res.File.SizeBytes,
		MimeType:    res.File.MimeType,
		AppMetaData: toPBAppMetaData(res.File.AppMetaData),
	}, nil
}
