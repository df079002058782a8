package services

import (
	"context"
	"encoding/base64"
	"strings"

	"github.com/MILANBHADARKA/TiffinCart-sub000/utils"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/rekognition"
	rektypes "github.com/aws/aws-sdk-go-v2/service/rekognition/types"
)

const moderationMinConfidence = 75

// ScreenImage runs Rekognition content moderation over a base64 image
// before it is allowed onto a kitchen or menu card. Returns the labels
// that tripped, empty means clean.
func ScreenImage(base64Data string) ([]string, error) {
	parts := strings.Split(base64Data, ",")
	raw := parts[len(parts)-1]
	imageBytes, err := base64.StdEncoding.DecodeString(raw)
	if err != nil {
		return nil, err
	}

	out, err := utils.RekClient().DetectModerationLabels(context.TODO(), &rekognition.DetectModerationLabelsInput{
		Image:         &rektypes.Image{Bytes: imageBytes},
		MinConfidence: aws.Float32(moderationMinConfidence),
	})
	if err != nil {
		return nil, err
	}

	var flagged []string
	for _, l := range out.ModerationLabels {
		if l.Name != nil {
			flagged = append(flagged, aws.ToString(l.Name))
		}
	}
	return flagged, nil
}
