package utils

import (
	"context"
	"fmt"
	"log"
	"os"
	"strings"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/ses"
	"github.com/aws/aws-sdk-go-v2/service/ses/types"
)

var sesClient *ses.Client

func sesClientOrInit() (*ses.Client, error) {
	if sesClient != nil {
		return sesClient, nil
	}
	cfg, err := config.LoadDefaultConfig(context.TODO(), config.WithRegion(os.Getenv("AWS_REGION")))
	if err != nil {
		return nil, err
	}
	sesClient = ses.NewFromConfig(cfg)
	return sesClient, nil
}

// generic SES sender
func sendEmail(to string, subject string, body string) error {
	client, err := sesClientOrInit()
	if err != nil {
		return err
	}

	input := &ses.SendEmailInput{
		Destination: &types.Destination{
			ToAddresses: []string{to},
		},
		Message: &types.Message{
			Subject: &types.Content{
				Data: aws.String(subject),
			},
			Body: &types.Body{
				Text: &types.Content{
					Data: aws.String(body),
				},
			},
		},
		Source: aws.String(os.Getenv("SES_EMAIL")),
	}

	_, err = client.SendEmail(context.TODO(), input)
	if err != nil {
		log.Printf("SES send error: %v", err)
		return fmt.Errorf("email send failed: %v", err)
	}
	return nil
}

// SendOrderConfirmationEmail summarizes a checkout. One checkout can
// produce several orders, one line each.
func SendOrderConfirmationEmail(to string, lines []string, total float64) error {
	subject := "Your TiffinCart order is placed"
	body := fmt.Sprintf(
		"Thanks for your order!\n\n%s\n\nTotal paid: ₹%.0f\n\nWe'll let you know when your tiffin is on the way.",
		strings.Join(lines, "\n"), total,
	)
	return sendEmail(to, subject, body)
}

func SendOrderStatusEmail(to string, orderID uint, status, kitchenName string) error {
	subject := fmt.Sprintf("Order #%d update", orderID)
	body := fmt.Sprintf("Your order #%d from %s is now %s.", orderID, kitchenName, strings.ReplaceAll(status, "_", " "))
	return sendEmail(to, subject, body)
}
