package worker

import (
	"context"
	"fmt"
	"time"

	"mazdoor/models"
	"mazdoor/utils"

	"github.com/cloudinary/cloudinary-go/v2/api/uploader"
	"go.uber.org/zap"
)

// Verification document kinds.
const (
	DocCNIC   = "cnic"
	DocPolice = "police"
	DocSkill  = "skill"
)

// UploadDocument uploads a verification document to Cloudinary and stores
// its URL on the profile. The matching verification flag stays false until
// an admin reviews the document and flips it via PATCH.
func (s *DefaultWorkerService) UploadDocument(id, actorID, actorRole, kind, localFilePath string) (*models.WorkerProfile, error) {
	if kind != DocCNIC && kind != DocPolice && kind != DocSkill {
		return nil, ValidationError{Reason: fmt.Sprintf("unknown document kind %q", kind)}
	}
	if s.Cloudinary == nil {
		return nil, fmt.Errorf("document storage is not configured")
	}

	profile, err := s.Repo.GetByID(id)
	if err != nil {
		utils.GetLogger().Error("UploadDocument: lookup failed", zap.Error(err))
		return nil, fmt.Errorf("failed to upload document, please try again")
	}
	if profile == nil {
		return nil, NotFoundError{ID: id}
	}
	if actorRole != models.RoleAdmin && profile.UserID != actorID {
		return nil, ForbiddenError{}
	}

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	result, err := s.Cloudinary.Upload.Upload(ctx, localFilePath, uploader.UploadParams{
		Folder: "verification/" + kind,
	})
	if err != nil {
		utils.GetLogger().Error("UploadDocument: cloudinary upload failed", zap.Error(err))
		return nil, fmt.Errorf("failed to upload document, please try again")
	}

	switch kind {
	case DocCNIC:
		profile.Verification.CNICDocURL = result.SecureURL
	case DocPolice:
		profile.Verification.PoliceDocURL = result.SecureURL
	case DocSkill:
		profile.Verification.SkillDocURL = result.SecureURL
	}

	if err := s.Repo.Update(profile); err != nil {
		utils.GetLogger().Error("UploadDocument: write failed", zap.Error(err))
		return nil, fmt.Errorf("failed to upload document, please try again")
	}

	s.cacheInvalidate(id)
	return profile, nil
}
