package controller

import (
	"context"
	"fmt"

	"github.com/windoze95/movierec/internal/logger"
	"github.com/windoze95/movierec/internal/models"
	"github.com/windoze95/movierec/internal/session"
	"go.uber.org/zap"
)

// Register validates the credentials locally and creates the account.
func (c *Controller) Register(ctx context.Context, username, password string) error {
	if err := ValidateUsername(username); err != nil {
		c.alert(err.Error())
		return err
	}
	if err := ValidatePassword(password); err != nil {
		c.alert(err.Error())
		return err
	}

	message, err := c.API.Register(ctx, models.Credentials{Username: username, Password: password})
	if err != nil {
		logger.Get().Error("failed to register", zap.String("username", username), zap.Error(err))
		c.alert(MsgRegisterFailed)
		return fmt.Errorf("register %q: %w", username, err)
	}
	if message == "" {
		message = MsgRegistered
	}
	c.alert(message)
	return nil
}

// Login exchanges the credentials for a session token and stores it.
func (c *Controller) Login(ctx context.Context, username, password string) error {
	resp, err := c.API.Login(ctx, models.Credentials{Username: username, Password: password})
	if err != nil {
		logger.Get().Error("failed to log in", zap.String("username", username), zap.Error(err))
		c.alert(MsgLoginFailed)
		return fmt.Errorf("login %q: %w", username, err)
	}
	if resp.AccessToken == "" {
		c.alert(resp.Msg)
		return ErrNoToken
	}

	if err := c.Tokens.Save(resp.AccessToken); err != nil {
		logger.Get().Error("failed to store session token", zap.Error(err))
		c.alert(MsgLoginFailed)
		return fmt.Errorf("store session token: %w", err)
	}
	c.alert(MsgLoggedIn)
	return nil
}

// Logout forgets the stored session token.
func (c *Controller) Logout() error {
	if err := c.Tokens.Clear(); err != nil {
		logger.Get().Error("failed to clear session token", zap.Error(err))
		return fmt.Errorf("clear session token: %w", err)
	}
	c.alert(MsgLoggedOut)
	return nil
}

// CurrentUser returns the identity stored in the session token.
func (c *Controller) CurrentUser() (string, error) {
	token, err := c.Tokens.Load()
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrNotLoggedIn, err)
	}
	if token == "" {
		return "", ErrNotLoggedIn
	}
	return session.Identity(token)
}
