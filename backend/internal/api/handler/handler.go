package handler

import (
	"github.com/IdanZeman/Miuim-sub007/backend/internal/service"
)

// Handler HTTP 处理器聚合
type Handler struct {
	Presence       *PresenceHandler
	Snapshot       *SnapshotHandler
	RotationConfig *RotationConfigHandler
	Absence        *AbsenceHandler
	Override       *OverrideHandler
	Organization   *OrganizationHandler
	Export         *ExportHandler
}

// NewHandler 创建处理器聚合
func NewHandler(svc *service.Service) *Handler {
	return &Handler{
		Presence:       NewPresenceHandler(svc.Presence),
		Snapshot:       NewSnapshotHandler(svc.Snapshot),
		RotationConfig: NewRotationConfigHandler(svc.RotationConfig),
		Absence:        NewAbsenceHandler(svc.Absence),
		Override:       NewOverrideHandler(svc.Override),
		Organization:   NewOrganizationHandler(svc.Organization),
		Export:         NewExportHandler(svc.Export),
	}
}
