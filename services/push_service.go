package services

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"errors"
	"os"
	"strings"

	"github.com/MILANBHADARKA/TiffinCart-sub000/models"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	awssns "github.com/aws/aws-sdk-go-v2/service/sns"
	"gorm.io/gorm"
)

type PushService struct {
	db             *gorm.DB
	sns            *awssns.Client
	fcmPlatformArn string
}

func NewPushService(db *gorm.DB) (*PushService, error) {
	region := os.Getenv("AWS_REGION")
	if region == "" {
		region = "ap-south-1"
	}
	cfg, err := config.LoadDefaultConfig(context.TODO(), config.WithRegion(region))
	if err != nil {
		return nil, err
	}
	return &PushService{
		db:             db,
		sns:            awssns.NewFromConfig(cfg),
		fcmPlatformArn: os.Getenv("SNS_FCM_ARN"),
	}, nil
}

func (p *PushService) tokenHash(tok string) string {
	h := sha256.Sum256([]byte(tok))
	return hex.EncodeToString(h[:])
}

func (p *PushService) platformArn(platform string) (string, error) {
	switch strings.ToLower(platform) {
	case "android", "ios":
		if p.fcmPlatformArn == "" {
			return "", errors.New("SNS_FCM_ARN not set")
		}
		return p.fcmPlatformArn, nil
	default:
		return "", errors.New("unknown platform")
	}
}

// RegisterDevice creates (or reuses) an SNS platform endpoint for the
// device token and stores it against the user.
func (p *PushService) RegisterDevice(userID uint, platform, token string) (*models.UserDevice, error) {
	appArn, err := p.platformArn(platform)
	if err != nil {
		return nil, err
	}

	out, err := p.sns.CreatePlatformEndpoint(context.TODO(), &awssns.CreatePlatformEndpointInput{
		PlatformApplicationArn: aws.String(appArn),
		Token:                  aws.String(token),
	})
	if err != nil {
		return nil, err
	}

	hash := p.tokenHash(token)
	var dev models.UserDevice
	err = p.db.Where("user_id = ? AND token_hash = ?", userID, hash).First(&dev).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		dev = models.UserDevice{UserID: userID, Platform: strings.ToLower(platform), TokenHash: hash}
	} else if err != nil {
		return nil, err
	}
	dev.EndpointARN = aws.ToString(out.EndpointArn)
	dev.Enabled = true
	if err := p.db.Save(&dev).Error; err != nil {
		return nil, err
	}
	return &dev, nil
}

// PushToUser sends a notification to every enabled device of a user.
// Failures disable the offending endpoint rather than bubbling up.
func (p *PushService) PushToUser(userID uint, title, body string, data map[string]string) {
	var devices []models.UserDevice
	if err := p.db.Where("user_id = ? AND enabled = ?", userID, true).Find(&devices).Error; err != nil {
		return
	}

	payload := map[string]any{
		"notification": map[string]string{"title": title, "body": body},
		"data":         data,
	}
	raw, _ := json.Marshal(payload)
	msg, _ := json.Marshal(map[string]string{"default": body, "GCM": string(raw)})

	for _, d := range devices {
		_, err := p.sns.Publish(context.TODO(), &awssns.PublishInput{
			TargetArn:        aws.String(d.EndpointARN),
			Message:          aws.String(string(msg)),
			MessageStructure: aws.String("json"),
		})
		if err != nil {
			d.Enabled = false
			_ = p.db.Save(&d).Error
		}
	}
}
