package identity

import (
	"context"
	"errors"
	"log"
	"os"
	"strings"
	"time"

	"societyhub/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	cognito "github.com/aws/aws-sdk-go-v2/service/cognitoidentityprovider"
	"github.com/aws/aws-sdk-go-v2/service/cognitoidentityprovider/types"
	"github.com/google/uuid"
)

var ErrMissingCognitoConfig = errors.New("missing COGNITO_USER_POOL_ID or COGNITO_CLIENT_ID")

// Mobile numbers are stored in the pool as E.164 with this prefix.
const mobilePrefix = "+91"

// CognitoProvider implements account provisioning and password auth against a
// Cognito user pool. Usernames are the prefixed mobile number; the pool's sub
// claim is the user id everywhere else in the system.
type CognitoProvider struct {
	client     *cognito.Client
	userPoolID string
	clientID   string
	mockMode   bool
}

var _ interfaces.IIdentityProvider = (*CognitoProvider)(nil)

func NewCognitoProvider(ctx context.Context) (*CognitoProvider, error) {
	if isIdentityMockEnabled() {
		log.Printf("[auth][identity] mock mode enabled")
		return &CognitoProvider{mockMode: true}, nil
	}

	userPoolID := os.Getenv("COGNITO_USER_POOL_ID")
	clientID := os.Getenv("COGNITO_CLIENT_ID")
	if userPoolID == "" || clientID == "" {
		log.Printf("[auth][identity] missing cognito configuration")
		return nil, ErrMissingCognitoConfig
	}

	cfg, err := awsconfig.LoadDefaultConfig(ctx)
	if err != nil {
		log.Printf("[auth][identity] failed loading aws config err=%v", err)
		return nil, err
	}
	log.Printf("[auth][identity] Cognito client initialized pool=%s", userPoolID)

	return &CognitoProvider{
		client:     cognito.NewFromConfig(cfg),
		userPoolID: userPoolID,
		clientID:   clientID,
	}, nil
}

func (p *CognitoProvider) Authenticate(ctx context.Context, mobile, password string) (interfaces.IdentitySession, error) {
	username := mobilePrefix + mobile

	if p.mockMode {
		log.Printf("[auth][identity] mock authenticate username=%s", username)
		return interfaces.IdentitySession{
			UserID:      uuid.NewString(),
			DisplayName: mobile,
			AccessToken: "mock-access-token",
			IDToken:     "mock-id-token",
		}, nil
	}

	out, err := p.client.AdminInitiateAuth(ctx, &cognito.AdminInitiateAuthInput{
		UserPoolId: aws.String(p.userPoolID),
		ClientId:   aws.String(p.clientID),
		AuthFlow:   types.AuthFlowTypeAdminUserPasswordAuth,
		AuthParameters: map[string]string{
			"USERNAME": username,
			"PASSWORD": password,
		},
	})
	if err != nil {
		return interfaces.IdentitySession{}, translateAuthError(err)
	}
	if out.AuthenticationResult == nil {
		log.Printf("[auth][identity] auth challenge not supported username=%s", username)
		return interfaces.IdentitySession{}, interfaces.ErrBadCredentials
	}

	user, err := p.client.AdminGetUser(ctx, &cognito.AdminGetUserInput{
		UserPoolId: aws.String(p.userPoolID),
		Username:   aws.String(username),
	})
	if err != nil {
		return interfaces.IdentitySession{}, translateAuthError(err)
	}

	session := interfaces.IdentitySession{
		AccessToken: aws.ToString(out.AuthenticationResult.AccessToken),
		IDToken:     aws.ToString(out.AuthenticationResult.IdToken),
	}
	for _, attr := range user.UserAttributes {
		switch aws.ToString(attr.Name) {
		case "sub":
			session.UserID = aws.ToString(attr.Value)
		case "name":
			session.DisplayName = aws.ToString(attr.Value)
		}
	}
	log.Printf("[auth][identity] authenticate success user_id=%s", session.UserID)
	return session, nil
}

func (p *CognitoProvider) CreateAccount(ctx context.Context, name, mobile, password string) (string, error) {
	username := mobilePrefix + mobile

	if p.mockMode {
		id := uuid.NewString()
		log.Printf("[auth][identity] mock create account username=%s user_id=%s", username, id)
		return id, nil
	}

	out, err := p.client.AdminCreateUser(ctx, &cognito.AdminCreateUserInput{
		UserPoolId:        aws.String(p.userPoolID),
		Username:          aws.String(username),
		MessageAction:     types.MessageActionTypeSuppress,
		TemporaryPassword: aws.String(password),
		UserAttributes: []types.AttributeType{
			{Name: aws.String("name"), Value: aws.String(name)},
			{Name: aws.String("phone_number"), Value: aws.String(username)},
			{Name: aws.String("phone_number_verified"), Value: aws.String("true")},
		},
	})
	if err != nil {
		return "", translateAuthError(err)
	}

	// The temporary password would force a reset challenge on first login.
	_, err = p.client.AdminSetUserPassword(ctx, &cognito.AdminSetUserPasswordInput{
		UserPoolId: aws.String(p.userPoolID),
		Username:   aws.String(username),
		Password:   aws.String(password),
		Permanent:  true,
	})
	if err != nil {
		return "", translateAuthError(err)
	}

	userID := ""
	if out.User != nil {
		for _, attr := range out.User.Attributes {
			if aws.ToString(attr.Name) == "sub" {
				userID = aws.ToString(attr.Value)
			}
		}
	}
	log.Printf("[auth][identity] create account success user_id=%s created_at=%s", userID, time.Now().UTC().Format(time.RFC3339))
	return userID, nil
}

func translateAuthError(err error) error {
	var notAuthorized *types.NotAuthorizedException
	if errors.As(err, &notAuthorized) {
		return interfaces.ErrBadCredentials
	}
	var notFound *types.UserNotFoundException
	if errors.As(err, &notFound) {
		return interfaces.ErrAccountNotFound
	}
	var exists *types.UsernameExistsException
	if errors.As(err, &exists) {
		return interfaces.ErrAccountExists
	}
	return err
}

func isIdentityMockEnabled() bool {
	for _, key := range []string{"IDENTITY_PROVIDER_MOCK", "COGNITO_MOCK"} {
		v := strings.ToLower(strings.TrimSpace(os.Getenv(key)))
		switch v {
		case "1", "true", "yes", "on", "mock":
			return true
		}
	}
	return false
}
