// Package upload publishes the finished reel to YouTube Shorts using a
// long-lived OAuth refresh token.
package upload

import (
	"context"
	"fmt"
	"log"
	"os"

	"golang.org/x/oauth2"
	"golang.org/x/oauth2/google"
	"google.golang.org/api/option"
	"google.golang.org/api/youtube/v3"

	"bhaktibot/config"
)

// Credentials is the OAuth triple obtained once from a consent flow; the
// refresh token mints short-lived access tokens on every run.
type Credentials struct {
	ClientID     string
	ClientSecret string
	RefreshToken string
}

// Uploader wraps an authenticated YouTube service.
type Uploader struct {
	service *youtube.Service
}

// NewUploader builds a YouTube client from the refresh token.
func NewUploader(ctx context.Context, creds Credentials) (*Uploader, error) {
	if creds.ClientID == "" || creds.ClientSecret == "" || creds.RefreshToken == "" {
		return nil, fmt.Errorf("incomplete YouTube credentials")
	}

	conf := &oauth2.Config{
		ClientID:     creds.ClientID,
		ClientSecret: creds.ClientSecret,
		Endpoint:     google.Endpoint,
		Scopes:       []string{youtube.YoutubeUploadScope},
	}
	client := conf.Client(ctx, &oauth2.Token{RefreshToken: creds.RefreshToken})

	service, err := youtube.NewService(ctx, option.WithHTTPClient(client))
	if err != nil {
		return nil, fmt.Errorf("unable to create YouTube service: %w", err)
	}
	return &Uploader{service: service}, nil
}

// UploadVideo uploads the reel with the given metadata and returns the
// video ID.
func (u *Uploader) UploadVideo(videoPath string, meta Metadata) (string, error) {
	file, err := os.Open(videoPath)
	if err != nil {
		return "", fmt.Errorf("failed to open video file: %w", err)
	}
	defer file.Close()

	info, err := file.Stat()
	if err != nil {
		return "", fmt.Errorf("failed to stat video file: %w", err)
	}
	log.Printf("Uploading: %s (%.2f MB)", videoPath, float64(info.Size())/(1024*1024))

	video := &youtube.Video{
		Snippet: &youtube.VideoSnippet{
			Title:       meta.Title,
			Description: meta.Description,
			Tags:        meta.Tags,
			CategoryId:  meta.CategoryID,
		},
		Status: &youtube.VideoStatus{
			PrivacyStatus: config.YouTubePrivacyStatus,
			// never mark bhakti reels as made for kids
			SelfDeclaredMadeForKids: false,
		},
	}
	// ForceSendFields keeps the false value in the request body
	video.Status.ForceSendFields = []string{"SelfDeclaredMadeForKids"}

	call := u.service.Videos.Insert([]string{"snippet", "status"}, video).Media(file)
	resp, err := call.Do()
	if err != nil {
		return "", fmt.Errorf("failed to upload video: %w", err)
	}

	log.Printf("Uploaded: https://youtube.com/shorts/%s", resp.Id)
	return resp.Id, nil
}
