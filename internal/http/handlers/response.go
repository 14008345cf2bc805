package handlers

import "github.com/MaheshSuthar119/HeartBeat-Notification/pkg/client"

func NewResponse(messages ...string) client.Response {
	return client.Response{
		Messages: messages,
	}
}
