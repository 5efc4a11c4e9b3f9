// Copyright 2024 Google, LLC
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     https://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Package commands provides the concrete pipeline steps of the video
// processing workflow. This file defines the command that fetches and
// normalizes video metadata.
//
// Logic Flow:
//  1. Read the submitted URL from the context.
//  2. Delegate to the yt-dlp client, which resolves the video ID first and
//     refuses to contact any external system when resolution fails.
//  3. Store the fully-populated metadata record for the assembly step.
package commands

import (
	"github.com/ytprod/video-summary/internal/core/cor"
	"github.com/ytprod/video-summary/internal/ytdlp"
)

// MetadataFetch wraps the metadata-only yt-dlp invocation as a pipeline step.
type MetadataFetch struct {
	cor.BaseCommand
	client *ytdlp.Client
}

// NewMetadataFetch builds the command around a shared yt-dlp client.
func NewMetadataFetch(name string, client *ytdlp.Client) *MetadataFetch {
	cmd := &MetadataFetch{BaseCommand: *cor.NewBaseCommand(name), client: client}
	cmd.InputParamName = ParamURL
	cmd.OutputParamName = ParamMetadata
	return cmd
}

// Execute fetches the metadata and records either the result or the
// processing error on the context.
func (c *MetadataFetch) Execute(context cor.Context) {
	url := context.Get(c.GetInputParam()).(string)

	metadata, err := c.client.FetchMetadata(context.GetContext(), url)
	if err != nil {
		c.GetErrorCounter().Add(context.GetContext(), 1)
		context.AddError(c.GetName(), err)
		return
	}

	c.GetSuccessCounter().Add(context.GetContext(), 1)
	context.Add(c.GetOutputParam(), metadata)
}
